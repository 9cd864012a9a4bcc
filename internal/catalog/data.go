package catalog

var domains = []Domain{
	{Abbr: "AC", Name: "Access Control", NIST: "3.1"},
	{Abbr: "AT", Name: "Awareness and Training", NIST: "3.2"},
	{Abbr: "AU", Name: "Audit and Accountability", NIST: "3.3"},
	{Abbr: "CM", Name: "Configuration Management", NIST: "3.4"},
	{Abbr: "IA", Name: "Identification and Authentication", NIST: "3.5"},
	{Abbr: "IR", Name: "Incident Response", NIST: "3.6"},
	{Abbr: "MA", Name: "Maintenance", NIST: "3.7"},
	{Abbr: "MP", Name: "Media Protection", NIST: "3.8"},
	{Abbr: "PS", Name: "Personnel Security", NIST: "3.9"},
	{Abbr: "PE", Name: "Physical Protection", NIST: "3.10"},
	{Abbr: "RA", Name: "Risk Assessment", NIST: "3.11"},
	{Abbr: "CA", Name: "Security Assessment", NIST: "3.12"},
	{Abbr: "SC", Name: "System and Communications Protection", NIST: "3.13"},
	{Abbr: "SI", Name: "System and Information Integrity", NIST: "3.14"},
}

var controls = []Control{
	// AC Access Control
	{ID: "AC.L1-3.1.1", Level: 1, Domain: "AC", NIST: "3.1.1", Weight: 5,
		Text: "Limit information system access to authorized users, processes acting on behalf of authorized users, or devices (including other information systems)."},
	{ID: "AC.L1-3.1.2", Level: 1, Domain: "AC", NIST: "3.1.2", Weight: 5,
		Text: "Limit information system access to the types of transactions and functions that authorized users are permitted to execute."},
	{ID: "AC.L2-3.1.3", Level: 2, Domain: "AC", NIST: "3.1.3", Weight: 5,
		Text: "Control the flow of CUI in accordance with approved authorizations."},
	{ID: "AC.L2-3.1.4", Level: 2, Domain: "AC", NIST: "3.1.4", Weight: 3,
		Text: "Separate the duties of individuals to reduce the risk of malevolent activity without collusion."},
	{ID: "AC.L2-3.1.5", Level: 2, Domain: "AC", NIST: "3.1.5", Weight: 5,
		Text: "Employ the principle of least privilege, including for specific security functions and privileged accounts."},
	{ID: "AC.L2-3.1.6", Level: 2, Domain: "AC", NIST: "3.1.6", Weight: 1,
		Text: "Use non-privileged accounts or roles when accessing nonsecurity functions."},
	{ID: "AC.L2-3.1.7", Level: 2, Domain: "AC", NIST: "3.1.7", Weight: 5,
		Text: "Prevent non-privileged users from executing privileged functions and capture the execution of such functions in audit logs."},
	{ID: "AC.L2-3.1.8", Level: 2, Domain: "AC", NIST: "3.1.8", Weight: 3,
		Text: "Limit unsuccessful logon attempts."},
	{ID: "AC.L2-3.1.9", Level: 2, Domain: "AC", NIST: "3.1.9", Weight: 1,
		Text: "Provide privacy and security notices consistent with applicable CUI rules."},
	{ID: "AC.L2-3.1.10", Level: 2, Domain: "AC", NIST: "3.1.10", Weight: 1,
		Text: "Use session lock with pattern-hiding displays to prevent access and viewing of data after a period of inactivity."},
	{ID: "AC.L2-3.1.11", Level: 2, Domain: "AC", NIST: "3.1.11", Weight: 3,
		Text: "Terminate (automatically) a user session after a defined condition."},
	{ID: "AC.L2-3.1.12", Level: 2, Domain: "AC", NIST: "3.1.12", Weight: 5,
		Text: "Monitor and control remote access sessions."},
	{ID: "AC.L2-3.1.13", Level: 2, Domain: "AC", NIST: "3.1.13", Weight: 5,
		Text: "Employ cryptographic mechanisms to protect the confidentiality of remote access sessions."},
	{ID: "AC.L2-3.1.14", Level: 2, Domain: "AC", NIST: "3.1.14", Weight: 5,
		Text: "Route remote access via managed access control points."},
	{ID: "AC.L2-3.1.15", Level: 2, Domain: "AC", NIST: "3.1.15", Weight: 3,
		Text: "Authorize remote execution of privileged commands and remote access to security-relevant information."},
	{ID: "AC.L2-3.1.16", Level: 2, Domain: "AC", NIST: "3.1.16", Weight: 1,
		Text: "Authorize wireless access prior to allowing such connections."},
	{ID: "AC.L2-3.1.17", Level: 2, Domain: "AC", NIST: "3.1.17", Weight: 5,
		Text: "Protect wireless access using authentication and encryption."},
	{ID: "AC.L2-3.1.18", Level: 2, Domain: "AC", NIST: "3.1.18", Weight: 3,
		Text: "Control connection of mobile devices."},
	{ID: "AC.L2-3.1.19", Level: 2, Domain: "AC", NIST: "3.1.19", Weight: 5,
		Text: "Encrypt CUI on mobile devices and mobile computing platforms."},
	{ID: "AC.L1-3.1.20", Level: 1, Domain: "AC", NIST: "3.1.20", Weight: 5,
		Text: "Verify and control/limit connections to and use of external information systems."},
	{ID: "AC.L2-3.1.21", Level: 2, Domain: "AC", NIST: "3.1.21", Weight: 1,
		Text: "Limit use of portable storage devices on external systems."},
	{ID: "AC.L1-3.1.22", Level: 1, Domain: "AC", NIST: "3.1.22", Weight: 1,
		Text: "Control information posted or processed on publicly accessible information systems."},

	// AT Awareness and Training
	{ID: "AT.L2-3.2.1", Level: 2, Domain: "AT", NIST: "3.2.1", Weight: 3,
		Text: "Ensure that managers, systems administrators, and users of organizational systems are made aware of the security risks associated with their activities and of the applicable policies, standards, and procedures related to the security of those systems."},
	{ID: "AT.L2-3.2.2", Level: 2, Domain: "AT", NIST: "3.2.2", Weight: 3,
		Text: "Ensure that personnel are trained to carry out their assigned information security-related duties and responsibilities."},
	{ID: "AT.L2-3.2.3", Level: 2, Domain: "AT", NIST: "3.2.3", Weight: 3,
		Text: "Provide security awareness training on recognizing and reporting potential indicators of insider threat."},

	// AU Audit and Accountability
	{ID: "AU.L2-3.3.1", Level: 2, Domain: "AU", NIST: "3.3.1", Weight: 5,
		Text: "Create and retain system audit logs and records to the extent needed to enable the monitoring, analysis, investigation, and reporting of unlawful or unauthorized system activity."},
	{ID: "AU.L2-3.3.2", Level: 2, Domain: "AU", NIST: "3.3.2", Weight: 5,
		Text: "Ensure that the actions of individual system users can be uniquely traced to those users so they can be held accountable for their actions."},
	{ID: "AU.L2-3.3.3", Level: 2, Domain: "AU", NIST: "3.3.3", Weight: 1,
		Text: "Review and update logged events."},
	{ID: "AU.L2-3.3.4", Level: 2, Domain: "AU", NIST: "3.3.4", Weight: 3,
		Text: "Alert in the event of an audit logging process failure."},
	{ID: "AU.L2-3.3.5", Level: 2, Domain: "AU", NIST: "3.3.5", Weight: 3,
		Text: "Correlate audit record review, analysis, and reporting processes to support organizational processes for investigation and response to indications of unlawful, unauthorized, suspicious, or unusual activity."},
	{ID: "AU.L2-3.3.6", Level: 2, Domain: "AU", NIST: "3.3.6", Weight: 1,
		Text: "Provide audit record reduction and report generation to support on-demand analysis and reporting."},
	{ID: "AU.L2-3.3.7", Level: 2, Domain: "AU", NIST: "3.3.7", Weight: 1,
		Text: "Provide a system capability that compares and synchronizes internal system clocks with an authoritative source to generate time stamps for audit records."},
	{ID: "AU.L2-3.3.8", Level: 2, Domain: "AU", NIST: "3.3.8", Weight: 3,
		Text: "Protect audit information and audit logging tools from unauthorized access, modification, and deletion."},
	{ID: "AU.L2-3.3.9", Level: 2, Domain: "AU", NIST: "3.3.9", Weight: 1,
		Text: "Limit management of audit logging functionality to a subset of privileged users."},

	// CM Configuration Management
	{ID: "CM.L2-3.4.1", Level: 2, Domain: "CM", NIST: "3.4.1", Weight: 5,
		Text: "Establish and maintain baseline configurations and inventories of organizational systems (including hardware, software, firmware, and documentation) throughout the respective system development life cycles."},
	{ID: "CM.L2-3.4.2", Level: 2, Domain: "CM", NIST: "3.4.2", Weight: 5,
		Text: "Establish and enforce security configuration settings for information technology products employed in organizational systems."},
	{ID: "CM.L2-3.4.3", Level: 2, Domain: "CM", NIST: "3.4.3", Weight: 3,
		Text: "Track, review, approve or disapprove, and log changes to organizational systems."},
	{ID: "CM.L2-3.4.4", Level: 2, Domain: "CM", NIST: "3.4.4", Weight: 3,
		Text: "Analyze the security impact of changes prior to implementation."},
	{ID: "CM.L2-3.4.5", Level: 2, Domain: "CM", NIST: "3.4.5", Weight: 3,
		Text: "Define, document, approve, and enforce physical and logical access restrictions associated with changes to organizational systems."},
	{ID: "CM.L2-3.4.6", Level: 2, Domain: "CM", NIST: "3.4.6", Weight: 3,
		Text: "Employ the principle of least functionality by configuring organizational systems to provide only essential capabilities."},
	{ID: "CM.L2-3.4.7", Level: 2, Domain: "CM", NIST: "3.4.7", Weight: 3,
		Text: "Restrict, disable, or prevent the use of nonessential programs, functions, ports, protocols, and services."},
	{ID: "CM.L2-3.4.8", Level: 2, Domain: "CM", NIST: "3.4.8", Weight: 3,
		Text: "Apply deny-by-exception (blacklisting) policy to prevent the use of unauthorized software or deny-all, permit-by-exception (whitelisting) policy to allow the execution of authorized software."},
	{ID: "CM.L2-3.4.9", Level: 2, Domain: "CM", NIST: "3.4.9", Weight: 1,
		Text: "Control and monitor user-installed software."},

	// IA Identification and Authentication
	{ID: "IA.L1-3.5.1", Level: 1, Domain: "IA", NIST: "3.5.1", Weight: 5,
		Text: "Identify information system users, processes acting on behalf of users, or devices."},
	{ID: "IA.L1-3.5.2", Level: 1, Domain: "IA", NIST: "3.5.2", Weight: 5,
		Text: "Authenticate (or verify) the identities of those users, processes, or devices, as a prerequisite to allowing access to organizational information systems."},
	{ID: "IA.L2-3.5.3", Level: 2, Domain: "IA", NIST: "3.5.3", Weight: 5,
		Text: "Use multifactor authentication for local and network access to privileged accounts and for network access to non-privileged accounts."},
	{ID: "IA.L2-3.5.4", Level: 2, Domain: "IA", NIST: "3.5.4", Weight: 5,
		Text: "Employ replay-resistant authentication mechanisms for network access to privileged and non-privileged accounts."},
	{ID: "IA.L2-3.5.5", Level: 2, Domain: "IA", NIST: "3.5.5", Weight: 1,
		Text: "Prevent reuse of identifiers for a defined period."},
	{ID: "IA.L2-3.5.6", Level: 2, Domain: "IA", NIST: "3.5.6", Weight: 1,
		Text: "Disable identifiers after a defined period of inactivity."},
	{ID: "IA.L2-3.5.7", Level: 2, Domain: "IA", NIST: "3.5.7", Weight: 3,
		Text: "Enforce a minimum password complexity and change of characters when new passwords are created."},
	{ID: "IA.L2-3.5.8", Level: 2, Domain: "IA", NIST: "3.5.8", Weight: 1,
		Text: "Prohibit password reuse for a specified number of generations."},
	{ID: "IA.L2-3.5.9", Level: 2, Domain: "IA", NIST: "3.5.9", Weight: 1,
		Text: "Allow temporary password use for system logons with an immediate change to a permanent password."},
	{ID: "IA.L2-3.5.10", Level: 2, Domain: "IA", NIST: "3.5.10", Weight: 5,
		Text: "Store and transmit only cryptographically-protected passwords."},
	{ID: "IA.L2-3.5.11", Level: 2, Domain: "IA", NIST: "3.5.11", Weight: 1,
		Text: "Obscure feedback of authentication information."},

	// IR Incident Response
	{ID: "IR.L2-3.6.1", Level: 2, Domain: "IR", NIST: "3.6.1", Weight: 5,
		Text: "Establish an operational incident-handling capability for organizational systems that includes preparation, detection, analysis, containment, recovery, and user response activities."},
	{ID: "IR.L2-3.6.2", Level: 2, Domain: "IR", NIST: "3.6.2", Weight: 5,
		Text: "Track, document, and report incidents to designated officials and/or authorities both internal and external to the organization."},
	{ID: "IR.L2-3.6.3", Level: 2, Domain: "IR", NIST: "3.6.3", Weight: 3,
		Text: "Test the organizational incident response capability."},

	// MA Maintenance
	{ID: "MA.L2-3.7.1", Level: 2, Domain: "MA", NIST: "3.7.1", Weight: 1,
		Text: "Perform maintenance on organizational systems."},
	{ID: "MA.L2-3.7.2", Level: 2, Domain: "MA", NIST: "3.7.2", Weight: 3,
		Text: "Provide controls on the tools, techniques, mechanisms, and personnel used to conduct system maintenance."},
	{ID: "MA.L2-3.7.3", Level: 2, Domain: "MA", NIST: "3.7.3", Weight: 3,
		Text: "Ensure equipment removed for off-site maintenance is sanitized of any CUI."},
	{ID: "MA.L2-3.7.4", Level: 2, Domain: "MA", NIST: "3.7.4", Weight: 3,
		Text: "Check media containing diagnostic and test programs for malicious code before the media are used in organizational systems."},
	{ID: "MA.L2-3.7.5", Level: 2, Domain: "MA", NIST: "3.7.5", Weight: 5,
		Text: "Require multifactor authentication to establish nonlocal maintenance sessions via external network connections and terminate such connections when nonlocal maintenance is complete."},
	{ID: "MA.L2-3.7.6", Level: 2, Domain: "MA", NIST: "3.7.6", Weight: 3,
		Text: "Supervise the maintenance activities of maintenance personnel without required access authorization."},

	// MP Media Protection
	{ID: "MP.L1-3.8.3", Level: 1, Domain: "MP", NIST: "3.8.3", Weight: 5,
		Text: "Sanitize or destroy information system media containing Federal Contract Information before disposal or release for reuse."},
	{ID: "MP.L2-3.8.1", Level: 2, Domain: "MP", NIST: "3.8.1", Weight: 3,
		Text: "Protect (i.e., physically control and securely store) system media containing CUI, both paper and digital."},
	{ID: "MP.L2-3.8.2", Level: 2, Domain: "MP", NIST: "3.8.2", Weight: 3,
		Text: "Limit access to CUI on system media to authorized users."},
	{ID: "MP.L2-3.8.4", Level: 2, Domain: "MP", NIST: "3.8.4", Weight: 1,
		Text: "Mark media with necessary CUI markings and distribution limitations."},
	{ID: "MP.L2-3.8.5", Level: 2, Domain: "MP", NIST: "3.8.5", Weight: 3,
		Text: "Control access to media containing CUI and maintain accountability for media during transport outside of controlled areas."},
	{ID: "MP.L2-3.8.6", Level: 2, Domain: "MP", NIST: "3.8.6", Weight: 5,
		Text: "Implement cryptographic mechanisms to protect the confidentiality of CUI stored on digital media during transport unless otherwise protected by alternative physical safeguards."},
	{ID: "MP.L2-3.8.7", Level: 2, Domain: "MP", NIST: "3.8.7", Weight: 3,
		Text: "Control the use of removable media on system components."},
	{ID: "MP.L2-3.8.8", Level: 2, Domain: "MP", NIST: "3.8.8", Weight: 1,
		Text: "Prohibit the use of portable storage devices when such devices have no identifiable owner."},
	{ID: "MP.L2-3.8.9", Level: 2, Domain: "MP", NIST: "3.8.9", Weight: 3,
		Text: "Protect the confidentiality of backup CUI at storage locations."},

	// PS Personnel Security
	{ID: "PS.L2-3.9.1", Level: 2, Domain: "PS", NIST: "3.9.1", Weight: 3,
		Text: "Screen individuals prior to authorizing access to organizational systems containing CUI."},
	{ID: "PS.L2-3.9.2", Level: 2, Domain: "PS", NIST: "3.9.2", Weight: 3,
		Text: "Ensure that organizational systems containing CUI are protected during and after personnel actions such as terminations and transfers."},

	// PE Physical Protection
	{ID: "PE.L1-3.10.1", Level: 1, Domain: "PE", NIST: "3.10.1", Weight: 5,
		Text: "Limit physical access to organizational information systems, equipment, and the respective operating environments to authorized individuals."},
	{ID: "PE.L2-3.10.2", Level: 2, Domain: "PE", NIST: "3.10.2", Weight: 3,
		Text: "Protect and monitor the physical facility and support infrastructure for organizational systems."},
	{ID: "PE.L1-3.10.3", Level: 1, Domain: "PE", NIST: "3.10.3", Weight: 1,
		Text: "Escort visitors and monitor visitor activity."},
	{ID: "PE.L1-3.10.4", Level: 1, Domain: "PE", NIST: "3.10.4", Weight: 1,
		Text: "Maintain audit logs of physical access."},
	{ID: "PE.L1-3.10.5", Level: 1, Domain: "PE", NIST: "3.10.5", Weight: 1,
		Text: "Control and manage physical access devices."},
	{ID: "PE.L2-3.10.6", Level: 2, Domain: "PE", NIST: "3.10.6", Weight: 3,
		Text: "Enforce safeguarding measures for CUI at alternate work sites."},

	// RA Risk Assessment
	{ID: "RA.L2-3.11.1", Level: 2, Domain: "RA", NIST: "3.11.1", Weight: 3,
		Text: "Periodically assess the risk to organizational operations (including mission, functions, image, or reputation), organizational assets, and individuals, resulting from the operation of organizational systems and the associated processing, storage, or transmission of CUI."},
	{ID: "RA.L2-3.11.2", Level: 2, Domain: "RA", NIST: "3.11.2", Weight: 5,
		Text: "Scan for vulnerabilities in organizational systems and applications periodically and when new vulnerabilities affecting those systems and applications are identified."},
	{ID: "RA.L2-3.11.3", Level: 2, Domain: "RA", NIST: "3.11.3", Weight: 5,
		Text: "Remediate vulnerabilities in accordance with risk assessments."},

	// CA Security Assessment
	{ID: "CA.L2-3.12.1", Level: 2, Domain: "CA", NIST: "3.12.1", Weight: 3,
		Text: "Periodically assess the security controls in organizational systems to determine if the controls are effective in their application."},
	{ID: "CA.L2-3.12.2", Level: 2, Domain: "CA", NIST: "3.12.2", Weight: 5,
		Text: "Develop and implement plans of action designed to correct deficiencies and reduce or eliminate vulnerabilities in organizational systems."},
	{ID: "CA.L2-3.12.3", Level: 2, Domain: "CA", NIST: "3.12.3", Weight: 3,
		Text: "Monitor security controls on an ongoing basis to ensure the continued effectiveness of the controls."},
	{ID: "CA.L2-3.12.4", Level: 2, Domain: "CA", NIST: "3.12.4", Weight: 5,
		Text: "Develop, document, and periodically update system security plans that describe system boundaries, system environments of operation, how security requirements are implemented, and the relationships with or connections to other systems."},

	// SC System and Communications Protection
	{ID: "SC.L1-3.13.1", Level: 1, Domain: "SC", NIST: "3.13.1", Weight: 5,
		Text: "Monitor, control, and protect communications (i.e., information transmitted or received by organizational systems) at the external boundaries and key internal boundaries of organizational systems."},
	{ID: "SC.L2-3.13.2", Level: 2, Domain: "SC", NIST: "3.13.2", Weight: 3,
		Text: "Employ architectural designs, software development techniques, and systems engineering principles that promote effective information security within organizational systems."},
	{ID: "SC.L2-3.13.3", Level: 2, Domain: "SC", NIST: "3.13.3", Weight: 3,
		Text: "Separate user functionality from system management functionality."},
	{ID: "SC.L2-3.13.4", Level: 2, Domain: "SC", NIST: "3.13.4", Weight: 3,
		Text: "Prevent unauthorized and unintended information transfer via shared system resources."},
	{ID: "SC.L1-3.13.5", Level: 1, Domain: "SC", NIST: "3.13.5", Weight: 5,
		Text: "Implement subnetworks for publicly accessible system components that are physically or logically separated from internal networks."},
	{ID: "SC.L2-3.13.6", Level: 2, Domain: "SC", NIST: "3.13.6", Weight: 5,
		Text: "Deny network communications traffic by default and allow network communications traffic by exception (i.e., deny all, permit by exception)."},
	{ID: "SC.L2-3.13.7", Level: 2, Domain: "SC", NIST: "3.13.7", Weight: 3,
		Text: "Prevent remote devices from simultaneously establishing non-remote connections with organizational systems and communicating via some other connection to resources in external networks (i.e., split tunneling)."},
	{ID: "SC.L2-3.13.8", Level: 2, Domain: "SC", NIST: "3.13.8", Weight: 5,
		Text: "Implement cryptographic mechanisms to prevent unauthorized disclosure of CUI during transmission unless otherwise protected by alternative physical safeguards."},
	{ID: "SC.L2-3.13.9", Level: 2, Domain: "SC", NIST: "3.13.9", Weight: 1,
		Text: "Terminate network connections associated with communications sessions at the end of the sessions or after a defined period of inactivity."},
	{ID: "SC.L2-3.13.10", Level: 2, Domain: "SC", NIST: "3.13.10", Weight: 3,
		Text: "Establish and manage cryptographic keys for cryptography employed in organizational systems."},
	{ID: "SC.L2-3.13.11", Level: 2, Domain: "SC", NIST: "3.13.11", Weight: 5,
		Text: "Employ FIPS-validated cryptography when used to protect the confidentiality of CUI."},
	{ID: "SC.L2-3.13.12", Level: 2, Domain: "SC", NIST: "3.13.12", Weight: 1,
		Text: "Prohibit remote activation of collaborative computing devices and provide indication of devices in use to users present at the device."},
	{ID: "SC.L2-3.13.13", Level: 2, Domain: "SC", NIST: "3.13.13", Weight: 1,
		Text: "Control and monitor the use of mobile code."},
	{ID: "SC.L2-3.13.14", Level: 2, Domain: "SC", NIST: "3.13.14", Weight: 1,
		Text: "Control and monitor the use of Voice over Internet Protocol (VoIP) technologies."},
	{ID: "SC.L2-3.13.15", Level: 2, Domain: "SC", NIST: "3.13.15", Weight: 5,
		Text: "Protect the authenticity of communications sessions."},
	{ID: "SC.L2-3.13.16", Level: 2, Domain: "SC", NIST: "3.13.16", Weight: 5,
		Text: "Protect the confidentiality of CUI at rest."},

	// SI System and Information Integrity
	{ID: "SI.L1-3.14.1", Level: 1, Domain: "SI", NIST: "3.14.1", Weight: 5,
		Text: "Identify, report, and correct information and information system flaws in a timely manner."},
	{ID: "SI.L1-3.14.2", Level: 1, Domain: "SI", NIST: "3.14.2", Weight: 5,
		Text: "Provide protection from malicious code at appropriate locations within organizational information systems."},
	{ID: "SI.L2-3.14.3", Level: 2, Domain: "SI", NIST: "3.14.3", Weight: 3,
		Text: "Monitor system security alerts and advisories and take action in response."},
	{ID: "SI.L1-3.14.4", Level: 1, Domain: "SI", NIST: "3.14.4", Weight: 3,
		Text: "Update malicious code protection mechanisms when new releases are available."},
	{ID: "SI.L1-3.14.5", Level: 1, Domain: "SI", NIST: "3.14.5", Weight: 3,
		Text: "Perform periodic scans of the information system and real-time scans of files from external sources as files are downloaded, opened, or executed."},
	{ID: "SI.L2-3.14.6", Level: 2, Domain: "SI", NIST: "3.14.6", Weight: 5,
		Text: "Monitor organizational systems, including inbound and outbound communications traffic, to detect attacks and indicators of potential attacks."},
	{ID: "SI.L2-3.14.7", Level: 2, Domain: "SI", NIST: "3.14.7", Weight: 5,
		Text: "Identify unauthorized use of organizational systems."},
}
